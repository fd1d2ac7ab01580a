package database

// AccountModel is a row of the accounts table.
type AccountModel struct {
	*BaseModel
}

func (m *AccountModel) Name() string           { return m.getString("accountName") }
func (m *AccountModel) Wallets() []string      { return m.getStringSlice("wallets") }
func (m *AccountModel) Password() string       { return m.getString("password") }
func (m *AccountModel) Hint() string           { return m.getString("hint") }
func (m *AccountModel) NetworkType() int       { return m.getInt("networkType") }
func (m *AccountModel) Seed() string           { return m.getString("seed") }
func (m *AccountModel) GenerationHash() string { return m.getString("generationHash") }

// WalletModel is a row of the wallets table.
type WalletModel struct {
	*BaseModel
}

func (m *WalletModel) ID() string          { return m.getString("id") }
func (m *WalletModel) AccountName() string { return m.getString("accountName") }
func (m *WalletModel) Name() string        { return m.getString("name") }
func (m *WalletModel) Type() string        { return m.getString("type") }
func (m *WalletModel) Address() string     { return m.getString("address") }
func (m *WalletModel) PublicKey() string   { return m.getString("publicKey") }
func (m *WalletModel) EncPrivate() string  { return m.getString("encPrivate") }
func (m *WalletModel) EncIv() string       { return m.getString("encIv") }
func (m *WalletModel) Path() string        { return m.getString("path") }
func (m *WalletModel) IsMultisig() bool    { return m.getBool("isMultisig") }

// MosaicModel is a row of the mosaics table.
type MosaicModel struct {
	*BaseModel
}

func (m *MosaicModel) HexID() string          { return m.getString("hexId") }
func (m *MosaicModel) Name() string           { return m.getString("name") }
func (m *MosaicModel) Divisibility() int      { return m.getInt("divisibility") }
func (m *MosaicModel) OwnerPublicKey() string { return m.getString("ownerPublicKey") }
func (m *MosaicModel) Supply() uint64         { return m.getUint64("supply") }
func (m *MosaicModel) Balance() uint64        { return m.getUint64("balance") }
func (m *MosaicModel) IsCurrencyMosaic() bool { return m.getBool("isCurrencyMosaic") }
func (m *MosaicModel) IsHarvestMosaic() bool  { return m.getBool("isHarvestMosaic") }
func (m *MosaicModel) IsHidden() bool         { return m.getBool("isHidden") }
func (m *MosaicModel) StartHeight() uint64    { return m.getUint64("startHeight") }
func (m *MosaicModel) Duration() uint64       { return m.getUint64("duration") }
func (m *MosaicModel) GenerationHash() string { return m.getString("generationHash") }

// PeerModel is a row of the peers table.
type PeerModel struct {
	*BaseModel
}

func (m *PeerModel) RestURL() string        { return m.getString("rest_url") }
func (m *PeerModel) Host() string           { return m.getString("host") }
func (m *PeerModel) Port() int              { return m.getInt("port") }
func (m *PeerModel) Protocol() string       { return m.getString("protocol") }
func (m *PeerModel) NetworkType() int       { return m.getInt("networkType") }
func (m *PeerModel) GenerationHash() string { return m.getString("generationHash") }
func (m *PeerModel) Roles() int             { return m.getInt("roles") }
func (m *PeerModel) IsDefault() bool        { return m.getBool("is_default") }
func (m *PeerModel) FriendlyName() string   { return m.getString("friendly_name") }

// SettingsModel is a row of the settings table.
type SettingsModel struct {
	*BaseModel
}

func (m *SettingsModel) AccountName() string   { return m.getString("accountName") }
func (m *SettingsModel) DefaultFee() uint64    { return m.getUint64("default_fee") }
func (m *SettingsModel) DefaultWallet() string { return m.getString("default_wallet") }
func (m *SettingsModel) Language() string      { return m.getString("language") }
func (m *SettingsModel) ExplorerURL() string   { return m.getString("explorer_url") }
