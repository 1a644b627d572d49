package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"

	"casecare-service/pkg/config"
)

var key []byte

// Initialize sets the AES-256 key from configuration. Keys shorter than
// 32 bytes are right-padded with spaces, longer ones are truncated, so a
// rotated key of any reasonable length stays usable.
func Initialize(encConfig *config.EncryptionConfig) {
	key = normalizeKey(encConfig.Key)
}

func normalizeKey(raw string) []byte {
	b := make([]byte, 32)
	for i := range b {
		b[i] = ' '
	}
	copy(b, []byte(raw))
	return b
}

// Encrypt encrypts a sensitive value with AES-256-CBC. The random IV is
// prepended to the ciphertext and the whole buffer is base64-encoded.
// On any failure the plain value is returned unchanged so a write never
// loses data (availability over integrity, matching the legacy behavior).
func Encrypt(plain string) string {
	if plain == "" {
		return ""
	}

	encrypted, err := encrypt(plain)
	if err != nil {
		return plain
	}
	return encrypted
}

func encrypt(plain string) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	padded := pkcs7Pad([]byte(plain), aes.BlockSize)
	buf := make([]byte, aes.BlockSize+len(padded))

	iv := buf[:aes.BlockSize]
	if _, err := rand.Read(iv); err != nil {
		return "", err
	}

	mode := cipher.NewCBCEncrypter(block, iv)
	mode.CryptBlocks(buf[aes.BlockSize:], padded)

	return base64.StdEncoding.EncodeToString(buf), nil
}

// Decrypt reverses Encrypt. Corrupted or foreign ciphertext yields an
// empty string rather than an error.
func Decrypt(encrypted string) string {
	if encrypted == "" {
		return ""
	}

	plain, err := decrypt(encrypted)
	if err != nil {
		return ""
	}
	return plain
}

func decrypt(encrypted string) (string, error) {
	buf, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		return "", err
	}

	if len(buf) < 2*aes.BlockSize || len(buf)%aes.BlockSize != 0 {
		return "", errors.New("ciphertext too short")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	iv := buf[:aes.BlockSize]
	ciphertext := buf[aes.BlockSize:]

	mode := cipher.NewCBCDecrypter(block, iv)
	plain := make([]byte, len(ciphertext))
	mode.CryptBlocks(plain, ciphertext)

	return pkcs7Unpad(plain, aes.BlockSize)
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+padding)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padding)
	}
	return padded
}

func pkcs7Unpad(data []byte, blockSize int) (string, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return "", errors.New("invalid padded length")
	}

	padding := int(data[len(data)-1])
	if padding == 0 || padding > blockSize || padding > len(data) {
		return "", errors.New("invalid padding")
	}
	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return "", errors.New("invalid padding")
		}
	}

	return string(data[:len(data)-padding]), nil
}
