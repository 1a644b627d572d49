package encryption

import (
	"encoding/base64"
	"os"
	"testing"

	"casecare-service/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	Initialize(&config.EncryptionConfig{Key: "unit-test-encryption-key"})
	os.Exit(m.Run())
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	cases := []string{
		"123-45-6789",
		"short",
		"a value exactly long enough to span multiple AES blocks without trouble",
	}
	for _, plain := range cases {
		cipher := Encrypt(plain)
		assert.NotEqual(t, plain, cipher)
		assert.Equal(t, plain, Decrypt(cipher))
	}
}

func TestEncryptRandomizesIV(t *testing.T) {
	a := Encrypt("123-45-6789")
	b := Encrypt("123-45-6789")
	assert.NotEqual(t, a, b)
	assert.Equal(t, Decrypt(a), Decrypt(b))
}

func TestDecryptGarbageYieldsEmpty(t *testing.T) {
	assert.Equal(t, "", Decrypt("not base64 at all!"))

	// valid base64, wrong length for CBC
	assert.Equal(t, "", Decrypt(base64.StdEncoding.EncodeToString([]byte("too short"))))

	// well-formed buffer of the right shape but random bytes
	junk := make([]byte, 48)
	assert.Equal(t, "", Decrypt(base64.StdEncoding.EncodeToString(junk)))
}

func TestNormalizeKeyPadsAndTruncates(t *testing.T) {
	short := normalizeKey("abc")
	require.Len(t, short, 32)
	assert.Equal(t, byte('a'), short[0])
	assert.Equal(t, byte(' '), short[31])

	long := normalizeKey("0123456789012345678901234567890123456789")
	require.Len(t, long, 32)
	assert.Equal(t, byte('1'), long[31])
}

func TestFormatPhoneNumber(t *testing.T) {
	assert.Equal(t, "(555) 123-4567", FormatPhoneNumber("5551234567"))
	assert.Equal(t, "(555) 123-4567", FormatPhoneNumber("555-123-4567"))
	assert.Equal(t, "(555) 123-4567", FormatPhoneNumber("(555) 123-4567"))
	assert.Equal(t, "12345", FormatPhoneNumber("12345"))
	assert.Equal(t, "", FormatPhoneNumber(""))
}

func TestUnformatPhoneNumber(t *testing.T) {
	assert.Equal(t, "5551234567", UnformatPhoneNumber("(555) 123-4567"))
	assert.Equal(t, "", UnformatPhoneNumber("no digits"))
}
