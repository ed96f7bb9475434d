package keystore

import (
	"context"

	"github/dlcplaza/go-dlcsigner/internal/wallet/hdkey"
)

// Service stores an encrypted mnemonic in a keystore file
type Service interface {
	// Create encrypts mnemonic with password and writes a new keystore file at path
	Create(ctx context.Context, path string, req *CreateRequest) (*File, error)

	// Load reads a keystore file without decrypting it
	Load(ctx context.Context, path string) (*File, error)

	// DecryptMnemonic decrypts the mnemonic of file
	DecryptMnemonic(ctx context.Context, file *File, password string) (string, error)

	// Unlock decrypts the keystore at path and builds its key context
	Unlock(ctx context.Context, path string, password string) (*hdkey.Context, error)
}

// CreateRequest represents a new keystore file
type CreateRequest struct {
	Mnemonic string
	Password string
	Network  string // Network tag, see hdkey.ParseNetwork
	BasePath string // Derivation base path, empty for hdkey.DefaultBasePath
}

// File is the JSON layout of a keystore file. Only the mnemonic is secret;
// the xpub is kept in clear so the file can be identified without the password.
type File struct {
	Version  int    `json:"version"`
	ID       string `json:"id"`
	Network  string `json:"network"`
	BasePath string `json:"base_path"`
	Xpub     string `json:"xpub"`
	Crypto   struct {
		Ciphertext   string `json:"ciphertext"`
		CipherParams struct {
			IV string `json:"iv"`
		} `json:"cipherparams"`
		Cipher    string `json:"cipher"`
		KDF       string `json:"kdf"`
		KDFParams struct {
			DKLen int    `json:"dklen"`
			Salt  string `json:"salt"`
			N     int    `json:"n"`
			R     int    `json:"r"`
			P     int    `json:"p"`
		} `json:"kdfparams"`
		MAC string `json:"mac"`
	} `json:"crypto"`
}

// ScryptParams defines scrypt KDF parameters
type ScryptParams struct {
	DKLen int // Derived key length (32 bytes)
	N     int // CPU/memory cost parameter (262144)
	R     int // Block size parameter (8)
	P     int // Parallelization parameter (1)
}

// DefaultScryptParams returns the scrypt parameters new keystores are written with
func DefaultScryptParams() *ScryptParams {
	const (
		scryptDKLen = 32     // Derived key length (32 bytes)
		scryptN     = 262144 // CPU/memory cost parameter (2^18)
		scryptR     = 8      // Block size parameter
		scryptP     = 1      // Parallelization parameter
	)

	return &ScryptParams{
		DKLen: scryptDKLen,
		N:     scryptN,
		R:     scryptR,
		P:     scryptP,
	}
}
