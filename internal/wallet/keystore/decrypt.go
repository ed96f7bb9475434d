package keystore

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/crypto/scrypt"
)

// ErrInvalidPassword is returned when the keystore MAC does not match.
var ErrInvalidPassword = errors.New("invalid password")

// decryptMnemonic decrypts the mnemonic of a keystore file
func decryptMnemonic(file *File, password string) (string, error) {
	if file.Crypto.Cipher != cipherName || file.Crypto.KDF != kdfName {
		return "", fmt.Errorf("unsupported keystore cipher %q / kdf %q", file.Crypto.Cipher, file.Crypto.KDF)
	}
	if file.Crypto.KDFParams.DKLen < 32 {
		return "", fmt.Errorf("derived key length %d too short", file.Crypto.KDFParams.DKLen)
	}

	salt, err := hex.DecodeString(file.Crypto.KDFParams.Salt)
	if err != nil {
		return "", fmt.Errorf("failed to decode salt: %w", err)
	}

	//nolint:varnamelen // iv is a common abbreviation for initialization vector
	iv, err := hex.DecodeString(file.Crypto.CipherParams.IV)
	if err != nil {
		return "", fmt.Errorf("failed to decode IV: %w", err)
	}
	if len(iv) != ivSize {
		return "", fmt.Errorf("IV must be %d bytes, got %d", ivSize, len(iv))
	}

	ciphertext, err := hex.DecodeString(file.Crypto.Ciphertext)
	if err != nil {
		return "", fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	expectedMAC, err := hex.DecodeString(file.Crypto.MAC)
	if err != nil {
		return "", fmt.Errorf("failed to decode MAC: %w", err)
	}

	params := file.Crypto.KDFParams
	derivedKey, err := scrypt.Key([]byte(password), salt, params.N, params.R, params.P, params.DKLen)
	if err != nil {
		return "", fmt.Errorf("failed to derive key: %w", err)
	}
	defer wipe(derivedKey)

	mac := calculateMAC(derivedKey[16:32], ciphertext)
	if subtle.ConstantTimeCompare(mac, expectedMAC) != 1 {
		return "", errors.Wrap(ErrInvalidPassword, "MAC mismatch")
	}

	plaintext, err := xorAES128CTR(derivedKey[:16], iv, ciphertext)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt mnemonic: %w", err)
	}
	defer wipe(plaintext)

	return string(plaintext), nil
}
