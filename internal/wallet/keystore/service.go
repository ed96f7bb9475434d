package keystore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	"github/dlcplaza/go-dlcsigner/internal/util"
	"github/dlcplaza/go-dlcsigner/internal/wallet/hdkey"
	"github/dlcplaza/go-dlcsigner/internal/wallet/seed"
)

const (
	appDir       = "dlcsigner"
	keystoreName = "keystore.json"
	fileMode     = 0o600
	dirMode      = 0o700
)

// DefaultPath returns the keystore location under the XDG data directory
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, appDir, keystoreName)
}

type service struct {
	params *ScryptParams
}

// NewService creates a new keystore Service. A nil params uses DefaultScryptParams.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(params *ScryptParams) Service {
	if params == nil {
		params = DefaultScryptParams()
	}

	return &service{
		params: params,
	}
}

// Create encrypts mnemonic with password and writes a new keystore file at path
func (s *service) Create(ctx context.Context, path string, req *CreateRequest) (*File, error) {
	log := util.LogFromContext(ctx)

	if _, err := os.Stat(path); err == nil {
		return nil, errors.Errorf("keystore %s already exists", path)
	}
	if req.Password == "" {
		return nil, errors.New("password is required")
	}

	// Validates the mnemonic and yields the xpub recorded in the file
	keyCtx, err := contextFromMnemonic(req.Mnemonic, req.Network, req.BasePath)
	if err != nil {
		return nil, err
	}
	defer keyCtx.Wipe()

	file, err := encryptMnemonic(seed.NormalizeMnemonic(req.Mnemonic), req.Password, s.params)
	if err != nil {
		log.Error().Err(err).Msg("Failed to encrypt mnemonic")
		return nil, errors.Wrap(err, "failed to encrypt mnemonic")
	}
	file.Network = req.Network
	file.BasePath = keyCtx.BasePath()
	file.Xpub = keyCtx.Xpub()

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal keystore JSON")
	}

	if err := writeFileAtomic(path, data); err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to write keystore")
		return nil, err
	}

	log.Info().Str("path", path).Str("xpub", file.Xpub).Msg("Created keystore")

	return file, nil
}

// Load reads a keystore file without decrypting it
func (s *service) Load(_ context.Context, path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read keystore %s", path)
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal keystore JSON")
	}
	if file.Version != fileVersion {
		return nil, errors.Errorf("unsupported keystore version %d", file.Version)
	}

	return &file, nil
}

// DecryptMnemonic decrypts the mnemonic of file
func (s *service) DecryptMnemonic(ctx context.Context, file *File, password string) (string, error) {
	mnemonic, err := decryptMnemonic(file, password)
	if err != nil {
		util.LogFromContext(ctx).Error().Err(err).Str("keystore_id", file.ID).Msg("Failed to decrypt mnemonic")
		return "", errors.Wrap(err, "failed to decrypt mnemonic")
	}

	return mnemonic, nil
}

// Unlock decrypts the keystore at path and builds its key context
func (s *service) Unlock(ctx context.Context, path string, password string) (*hdkey.Context, error) {
	file, err := s.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	mnemonic, err := s.DecryptMnemonic(ctx, file, password)
	if err != nil {
		return nil, err
	}

	keyCtx, err := contextFromMnemonic(mnemonic, file.Network, file.BasePath)
	if err != nil {
		return nil, err
	}

	if keyCtx.Xpub() != file.Xpub {
		keyCtx.Wipe()
		return nil, errors.Errorf("keystore %s is corrupted: xpub does not match", file.ID)
	}

	return keyCtx, nil
}

func contextFromMnemonic(mnemonic, network, basePath string) (*hdkey.Context, error) {
	params, err := hdkey.ParseNetwork(network)
	if err != nil {
		return nil, err
	}

	seedBytes, err := seed.FromMnemonic(mnemonic, "")
	if err != nil {
		return nil, err
	}
	defer seed.Wipe(seedBytes)

	return hdkey.NewContext(seedBytes, params, basePath)
}

func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return errors.Wrap(err, "failed to create keystore directory")
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+keystoreName+"-*")
	if err != nil {
		return errors.Wrap(err, "failed to create temporary keystore")
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(fileMode); err != nil {
		tmp.Close()
		return errors.Wrap(err, "failed to chmod temporary keystore")
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "failed to write temporary keystore")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "failed to close temporary keystore")
	}

	return errors.Wrap(os.Rename(tmp.Name(), path), "failed to move keystore into place")
}
