package flash

const (
	// SettingsMagic marks a valid settings record, stored little-endian
	// in the first word of the sector.
	SettingsMagic = 0xDEADBEEF

	// SettingsSector is the bank-1 sector reserved for settings, the last
	// 128 KiB before the bank boundary (0x080E0000).
	SettingsSector = 7
)

// Store persists one 32-byte settings record at the start of a dedicated
// sector: magic, a 4-byte index, and zero padding out to the 256-bit
// programming granularity.
//
// Each Save erases the whole sector and reprograms the record, so a save
// either completes or leaves the magic invalid; there is no partial
// state a Load could mistake for a record. The sector is rated for about
// 1e4 erase cycles; callers that change settings rapidly should coalesce
// saves.
type Store struct {
	bank   Bank
	sector uint32
}

// NewStore returns a store over the given sector of a bank.
func NewStore(bank Bank, sector uint32) Store {
	return Store{bank: bank, sector: sector}
}

// Save replaces the persisted record with the given index value.
func (s Store) Save(index uint32) error {
	rec := [8]uint32{SettingsMagic, index}

	if err := EraseSector(s.bank, s.sector); err != nil {
		return err
	}
	return ProgramWord(s.bank, s.sector*SectorBytes, &rec)
}

// Load reads the record back. ok is false when the magic does not match,
// which is how an erased or never-written sector presents; callers fall
// back to their default.
func (s Store) Load() (index uint32, ok bool) {
	base := s.sector * SectorBytes
	if s.bank.ReadWord(base) != SettingsMagic {
		return 0, false
	}
	return s.bank.ReadWord(base + 4), true
}
