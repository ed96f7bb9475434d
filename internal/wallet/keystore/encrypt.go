package keystore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/scrypt"
	"lukechampine.com/frand"
)

const (
	fileVersion = 1
	cipherName  = "aes-128-ctr"
	kdfName     = "scrypt"
	saltSize    = 32
	ivSize      = aes.BlockSize
)

// encryptMnemonic encrypts a mnemonic into the crypto section of a new File
//
//nolint:varnamelen // iv is a common abbreviation for initialization vector
func encryptMnemonic(mnemonic string, password string, params *ScryptParams) (*File, error) {
	salt := frand.Bytes(saltSize)
	iv := frand.Bytes(ivSize)

	derivedKey, err := scrypt.Key([]byte(password), salt, params.N, params.R, params.P, params.DKLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer wipe(derivedKey)

	// Encrypt mnemonic using AES-128-CTR
	ciphertext, err := xorAES128CTR(derivedKey[:16], iv, []byte(mnemonic)) // Use first 16 bytes for AES-128
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt mnemonic: %w", err)
	}

	mac := calculateMAC(derivedKey[16:32], ciphertext)

	file := &File{
		Version: fileVersion,
		ID:      uuid.New().String(),
	}

	file.Crypto.Ciphertext = hex.EncodeToString(ciphertext)
	file.Crypto.CipherParams.IV = hex.EncodeToString(iv)
	file.Crypto.Cipher = cipherName
	file.Crypto.KDF = kdfName
	file.Crypto.KDFParams.DKLen = params.DKLen
	file.Crypto.KDFParams.Salt = hex.EncodeToString(salt)
	file.Crypto.KDFParams.N = params.N
	file.Crypto.KDFParams.R = params.R
	file.Crypto.KDFParams.P = params.P
	file.Crypto.MAC = hex.EncodeToString(mac)

	return file, nil
}

// xorAES128CTR encrypts or decrypts data using AES-128-CTR mode
//
//nolint:varnamelen // iv is a common abbreviation for initialization vector
func xorAES128CTR(key []byte, iv []byte, in []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	out := make([]byte, len(in))
	stream := cipher.NewCTR(block, iv)
	stream.XORKeyStream(out, in)

	return out, nil
}

// calculateMAC calculates SHA-256(derivedKey[16:32] + ciphertext)
func calculateMAC(key []byte, ciphertext []byte) []byte {
	hasher := sha256.New()
	hasher.Write(key)
	hasher.Write(ciphertext)
	return hasher.Sum(nil)
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
