package application

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/nem2-wallet/walletcore/internal/database"
	"github.com/nem2-wallet/walletcore/pkg/wallet"
)

// AccountService manages profiles and the wallets derived from their
// mnemonic.
type AccountService interface {
	CreateProfile(ctx context.Context, req CreateProfileRequest) (*Profile, error)
	AddSeedWallet(
		ctx context.Context, accountName, passphrase string,
	) (*WalletInfo, error)
	DeriveRemoteAccount(
		ctx context.Context, walletID, passphrase string, remoteIndex int,
	) (*wallet.Account, error)
	ListWallets(ctx context.Context, accountName string) ([]WalletInfo, error)
	ExportPrivateKey(ctx context.Context, walletID, passphrase string) (string, error)
}

type accountService struct {
	db       *database.Database
	accounts *database.AccountsTable
	wallets  *database.WalletsTable
	settings *database.SettingsTable
}

func NewAccountService(db *database.Database) AccountService {
	return &accountService{
		db:       db,
		accounts: database.NewAccountsTable(),
		wallets:  database.NewWalletsTable(),
		settings: database.NewSettingsTable(),
	}
}

func (s *accountService) CreateProfile(
	ctx context.Context, req CreateProfileRequest,
) (*Profile, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	rows, err := s.db.Rows(s.accounts)
	if err != nil {
		return nil, err
	}
	if _, ok := rows[req.AccountName]; ok {
		return nil, ErrProfileAlreadyExists
	}

	mnemonic := req.Mnemonic
	if len(mnemonic) <= 0 {
		if mnemonic, err = wallet.CreateMnemonic(); err != nil {
			return nil, err
		}
	}
	if !wallet.IsMnemonicValid(mnemonic) {
		return nil, wallet.ErrInvalidMnemonic
	}

	encryptedSeed, err := wallet.Encrypt(wallet.EncryptOpts{
		PlainText:  mnemonic,
		Passphrase: req.Passphrase,
	})
	if err != nil {
		return nil, err
	}
	verifier, err := wallet.NewPassphraseVerifier(req.Passphrase)
	if err != nil {
		return nil, err
	}

	w, err := s.newSeedWallet(req.AccountName, mnemonic, req.Passphrase, 0, req.NetworkType)
	if err != nil {
		return nil, err
	}

	account := s.accounts.CreateModel(map[string]interface{}{
		"accountName":    req.AccountName,
		"wallets":        []string{w.Identifier()},
		"password":       verifier,
		"hint":           req.Hint,
		"networkType":    int(req.NetworkType),
		"seed":           encryptedSeed.String(),
		"generationHash": req.GenerationHash,
	})
	settings := s.settings.CreateModel(map[string]interface{}{
		"accountName":    req.AccountName,
		"default_fee":    req.DefaultFee,
		"default_wallet": w.Identifier(),
		"language":       defaultLanguage,
	})

	if err := s.db.SaveModel(s.wallets, w); err != nil {
		return nil, err
	}
	if err := s.db.SaveModel(s.accounts, account); err != nil {
		return nil, err
	}
	if err := s.db.SaveModel(s.settings, settings); err != nil {
		return nil, err
	}

	info := walletInfo(w)
	log.WithFields(log.Fields{
		"account": req.AccountName,
		"address": info.Address,
	}).Info("created profile")

	return &Profile{
		AccountName: req.AccountName,
		Mnemonic:    mnemonic,
		Wallet:      info,
	}, nil
}

// AddSeedWallet derives the wallet at the lowest seed index not in use.
func (s *accountService) AddSeedWallet(
	ctx context.Context, accountName, passphrase string,
) (*WalletInfo, error) {
	account, mnemonic, err := s.unlock(accountName, passphrase)
	if err != nil {
		return nil, err
	}

	wallets, err := s.profileWallets(accountName)
	if err != nil {
		return nil, err
	}
	used := make(map[string]bool)
	for _, w := range wallets {
		if w.Type() == WalletTypeSeed {
			used[w.Path()] = true
		}
	}

	path := wallet.DefaultDerivationPath.String()
	for used[path] {
		path, err = wallet.IncrementPathLevel(path, wallet.LevelAccount, 1)
		if err != nil {
			if errors.Is(err, wallet.ErrInvalidSeedIndex) {
				return nil, ErrMaxSeedWalletsReached
			}
			return nil, err
		}
	}
	index, err := wallet.SeedIndexFromPath(path)
	if err != nil {
		return nil, err
	}

	networkType := wallet.NetworkType(account.NetworkType())
	w, err := s.newSeedWallet(accountName, mnemonic, passphrase, index, networkType)
	if err != nil {
		return nil, err
	}

	updated := s.accounts.CreateModel(account.Values())
	updated.Set("wallets", append(account.Wallets(), w.Identifier()))

	if err := s.db.SaveModel(s.wallets, w); err != nil {
		return nil, err
	}
	if err := s.db.SaveModel(s.accounts, updated); err != nil {
		return nil, err
	}

	info := walletInfo(w)
	log.WithFields(log.Fields{
		"account": accountName,
		"path":    info.Path,
	}).Info("added seed wallet")
	return &info, nil
}

// DeriveRemoteAccount derives, without storing it, the remote account of a
// seed wallet used for delegated harvesting.
func (s *accountService) DeriveRemoteAccount(
	ctx context.Context, walletID, passphrase string, remoteIndex int,
) (*wallet.Account, error) {
	rows, err := s.db.Rows(s.wallets)
	if err != nil {
		return nil, err
	}
	row, ok := rows[walletID]
	if !ok {
		return nil, ErrWalletNotFound
	}
	w := row.(*database.WalletModel)
	if w.Type() != WalletTypeSeed {
		return nil, ErrNotSeedWallet
	}

	account, mnemonic, err := s.unlock(w.AccountName(), passphrase)
	if err != nil {
		return nil, err
	}

	path, err := wallet.RemoteAccountPath(w.Path(), remoteIndex)
	if err != nil {
		return nil, err
	}
	return wallet.CreateAccountAtPath(
		mnemonic, path, wallet.NetworkType(account.NetworkType()),
	)
}

// ExportPrivateKey decrypts the hex private key stored for a wallet.
func (s *accountService) ExportPrivateKey(
	ctx context.Context, walletID, passphrase string,
) (string, error) {
	rows, err := s.db.Rows(s.wallets)
	if err != nil {
		return "", err
	}
	row, ok := rows[walletID]
	if !ok {
		return "", ErrWalletNotFound
	}
	w := row.(*database.WalletModel)

	if _, _, err := s.unlock(w.AccountName(), passphrase); err != nil {
		return "", err
	}
	return wallet.Decrypt(wallet.DecryptOpts{
		Encrypted: wallet.EncryptedData{
			Data: w.EncPrivate(),
			Iv:   w.EncIv(),
		},
		Passphrase: passphrase,
	})
}

// ListWallets returns the wallets of a profile sorted by derivation path.
func (s *accountService) ListWallets(
	ctx context.Context, accountName string,
) ([]WalletInfo, error) {
	rows, err := s.db.Rows(s.accounts)
	if err != nil {
		return nil, err
	}
	if _, ok := rows[accountName]; !ok {
		return nil, ErrProfileNotFound
	}

	wallets, err := s.profileWallets(accountName)
	if err != nil {
		return nil, err
	}
	infos := make([]WalletInfo, 0, len(wallets))
	for _, w := range wallets {
		infos = append(infos, walletInfo(w))
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Path < infos[j].Path
	})
	return infos, nil
}

func (s *accountService) profileWallets(accountName string) ([]*database.WalletModel, error) {
	found, err := s.db.Find(s.wallets, func(m database.Model) bool {
		return m.(*database.WalletModel).AccountName() == accountName
	})
	if err != nil {
		return nil, err
	}
	wallets := make([]*database.WalletModel, 0, len(found))
	for _, m := range found {
		wallets = append(wallets, m.(*database.WalletModel))
	}
	return wallets, nil
}

// unlock checks the passphrase and returns the profile with its mnemonic.
func (s *accountService) unlock(
	accountName, passphrase string,
) (*database.AccountModel, string, error) {
	rows, err := s.db.Rows(s.accounts)
	if err != nil {
		return nil, "", err
	}
	row, ok := rows[accountName]
	if !ok {
		return nil, "", ErrProfileNotFound
	}
	account := row.(*database.AccountModel)

	ok, err = wallet.VerifyPassphrase(passphrase, account.Password())
	if err != nil {
		return nil, "", err
	}
	if !ok {
		return nil, "", ErrInvalidPassphrase
	}

	seed, err := wallet.ParseEncryptedData(account.Seed())
	if err != nil {
		return nil, "", fmt.Errorf("malformed seed: %w", err)
	}
	mnemonic, err := wallet.Decrypt(wallet.DecryptOpts{
		Encrypted:  seed,
		Passphrase: passphrase,
	})
	if err != nil {
		return nil, "", fmt.Errorf("decrypting seed: %w", err)
	}
	return account, mnemonic, nil
}

func (s *accountService) newSeedWallet(
	accountName, mnemonic, passphrase string, index int,
	networkType wallet.NetworkType,
) (database.Model, error) {
	account, err := wallet.CreateSubWalletByPathNumber(mnemonic, index, networkType)
	if err != nil {
		return nil, err
	}
	encPrivate, err := wallet.Encrypt(wallet.EncryptOpts{
		PlainText:  account.PrivateKeyHex(),
		Passphrase: passphrase,
	})
	if err != nil {
		return nil, err
	}

	return s.wallets.CreateModel(map[string]interface{}{
		"id":          uuid.New().String(),
		"accountName": accountName,
		"name":        fmt.Sprintf(seedWalletName, index+1),
		"type":        WalletTypeSeed,
		"address":     account.Address.Plain(),
		"publicKey":   account.PublicKeyHex(),
		"encPrivate":  encPrivate.Data,
		"encIv":       encPrivate.Iv,
		"path":        account.Path,
		"isMultisig":  false,
	}), nil
}

func walletInfo(m database.Model) WalletInfo {
	w := m.(*database.WalletModel)
	return WalletInfo{
		ID:          w.ID(),
		AccountName: w.AccountName(),
		Name:        w.Name(),
		Type:        w.Type(),
		Address:     w.Address(),
		PublicKey:   w.PublicKey(),
		Path:        w.Path(),
		IsMultisig:  w.IsMultisig(),
	}
}
