package mailer_test

import (
	"testing"

	"partsstore/pkg/mailer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client, err := mailer.NewClient(mailer.Config{
		Host:     "smtp.example.com",
		Username: "shop@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.NotNil(t, client)

	_, err = mailer.NewClient(mailer.Config{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "smtp host is required")
}

func TestBuildMessage(t *testing.T) {
	valid := mailer.Message{
		FromName:    "Parts Shop",
		FromAddress: "shop@example.com",
		To:          "customer@example.com",
		Subject:     "Your order",
		HTML:        "<p>thanks</p>",
	}

	m, err := mailer.BuildMessage(valid)
	require.NoError(t, err)
	assert.NotNil(t, m)

	badRecipient := valid
	badRecipient.To = "not-an-address"
	_, err = mailer.BuildMessage(badRecipient)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid recipient")

	badSender := valid
	badSender.FromAddress = "also not an address"
	_, err = mailer.BuildMessage(badSender)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid sender")
}
