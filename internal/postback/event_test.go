package postback

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "s3cret"

func validQuery() map[string]string {
	return map[string]string{
		"userid":         "telegram_99",
		"revenue":        "0.50",
		"transactionid":  "tx1",
		"type":           "credit",
		"currencyAmount": "1.25",
		"hash":           sha256Hex("telegram_99" + "0.5" + testSecret),
	}
}

func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func TestParseEvent(t *testing.T) {
	t.Parallel()

	t.Run("valid query", func(t *testing.T) {
		event, err := ParseEvent(validQuery())
		require.NoError(t, err)
		assert.Equal(t, "telegram_99", event.UserID)
		assert.Equal(t, "tx1", event.TransactionID)
		assert.Equal(t, "credit", event.Type)
		assert.Equal(t, "0.5", event.Revenue.String())
		assert.Equal(t, "1.25", event.CurrencyAmount.String())
	})

	t.Run("accepts case variants of userid and transactionid", func(t *testing.T) {
		for _, keys := range [][2]string{{"userID", "transactionID"}, {"userId", "transactionId"}} {
			q := validQuery()
			q[keys[0]] = q["userid"]
			q[keys[1]] = q["transactionid"]
			delete(q, "userid")
			delete(q, "transactionid")

			event, err := ParseEvent(q)
			require.NoError(t, err)
			assert.Equal(t, "telegram_99", event.UserID)
			assert.Equal(t, "tx1", event.TransactionID)
		}
	})

	t.Run("missing parameter", func(t *testing.T) {
		for _, key := range []string{"userid", "revenue", "transactionid", "hash", "type", "currencyAmount"} {
			q := validQuery()
			delete(q, key)
			_, err := ParseEvent(q)
			require.Error(t, err, key)
			assert.True(t, IsValidationError(err), key)
		}
	})

	t.Run("empty parameter", func(t *testing.T) {
		q := validQuery()
		q["type"] = ""
		_, err := ParseEvent(q)
		assert.ErrorIs(t, err, ErrInvalidParameters)
	})

	t.Run("non numeric amounts", func(t *testing.T) {
		q := validQuery()
		q["revenue"] = "abc"
		_, err := ParseEvent(q)
		assert.ErrorIs(t, err, ErrInvalidParameters)

		q = validQuery()
		q["currencyAmount"] = "abc"
		_, err = ParseEvent(q)
		assert.ErrorIs(t, err, ErrInvalidParameters)
	})
}

func TestEvent_Verify(t *testing.T) {
	t.Parallel()

	t.Run("matching signature", func(t *testing.T) {
		event, err := ParseEvent(validQuery())
		require.NoError(t, err)
		assert.NoError(t, event.Verify(testSecret))
	})

	t.Run("wrong secret", func(t *testing.T) {
		event, err := ParseEvent(validQuery())
		require.NoError(t, err)
		err = event.Verify("other")
		assert.True(t, IsSignatureError(err))
	})

	t.Run("signature over unnormalized revenue is rejected", func(t *testing.T) {
		q := validQuery()
		q["hash"] = sha256Hex("telegram_99" + "0.50" + testSecret)
		event, err := ParseEvent(q)
		require.NoError(t, err)
		assert.ErrorIs(t, event.Verify(testSecret), ErrInvalidSignature)
	})

	t.Run("upper case hash is rejected", func(t *testing.T) {
		q := validQuery()
		q["hash"] = "ABCDEF"
		event, err := ParseEvent(q)
		require.NoError(t, err)
		assert.ErrorIs(t, event.Verify(testSecret), ErrInvalidSignature)
	})
}

func TestSign(t *testing.T) {
	t.Parallel()

	assert.Equal(t, sha256Hex("telegram_99"+"0.5"+testSecret), Sign("telegram_99", 0.5, testSecret))
	assert.Equal(t, sha256Hex("42"+"1e-7"+testSecret), Sign("42", 1e-7, testSecret))
}
