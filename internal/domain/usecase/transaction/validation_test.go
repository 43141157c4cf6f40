package transaction

import (
	"strings"
	"testing"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	errs "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/usecase"
	"github.com/stretchr/testify/assert"
)

func TestValidateHandle(t *testing.T) {
	v := NewRequestValidator(nil)

	tests := []struct {
		name          string
		handle        string
		expected      string
		expectedError error
	}{
		{name: "Plain", handle: "awa", expected: "awa"},
		{name: "At Prefix And Case", handle: "@Awa.Diallo", expected: "awa.diallo"},
		{name: "Underscore And Digits", handle: "awa_221", expected: "awa_221"},
		{name: "Surrounding Spaces", handle: "  kofi  ", expected: "kofi"},
		{name: "Empty", handle: "", expectedError: errs.ErrValidation},
		{name: "Only At", handle: "@", expectedError: errs.ErrValidation},
		{name: "Too Short", handle: "ab", expectedError: errs.ErrValidation},
		{name: "Too Long", handle: strings.Repeat("a", 33), expectedError: errs.ErrValidation},
		{name: "Space Inside", handle: "awa diallo", expectedError: errs.ErrValidation},
		{name: "Dash", handle: "awa-d", expectedError: errs.ErrValidation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handle, err := v.ValidateHandle(tc.handle)
			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, handle)
		})
	}
}

func TestValidateCreate(t *testing.T) {
	v := NewRequestValidator(nil)
	valid := usecase.CreateTransactionRequest{
		ReceiverHandle:  "awa",
		FiatAmountIn:    dec("50000"),
		ExpectedFiatOut: dec("76.22"),
		DeliverySpeed:   " standard ",
	}

	speed, err := v.ValidateCreate(senderID, valid)
	assert.NoError(t, err)
	assert.Equal(t, entity.SpeedStandard, speed)

	negative := valid
	negative.ExpectedFiatOut = dec("-1")
	_, err = v.ValidateCreate(senderID, negative)
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)

	noSpeed := valid
	noSpeed.DeliverySpeed = ""
	_, err = v.ValidateCreate(senderID, noSpeed)
	assert.ErrorIs(t, err, errs.ErrInvalidSpeed)
}

func TestValidateRegistration(t *testing.T) {
	v := NewRequestValidator(func(addr string) bool { return strings.HasPrefix(addr, "0x") && len(addr) == 42 })

	_, err := v.ValidateRegistration(receiverID, usecase.RegisterReceiverRequest{Handle: "awa", WalletAddress: wallet})
	assert.NoError(t, err)

	_, err = v.ValidateRegistration(receiverID, usecase.RegisterReceiverRequest{Handle: "awa", WalletAddress: "awa.eth"})
	assert.ErrorIs(t, err, errs.ErrInvalidWalletAddress)

	_, err = v.ValidateRegistration(receiverID, usecase.RegisterReceiverRequest{Handle: "awa", FirstName: strings.Repeat("n", 65)})
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = v.ValidateRegistration(0, usecase.RegisterReceiverRequest{Handle: "awa"})
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}
