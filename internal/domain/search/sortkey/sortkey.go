package sortkey

// Key selects the presentation sort applied after search and facet narrowing.
type Key string

// Supported sort keys. An unknown key is a no-op (identity order), never an
// error.
const (
	// None preserves the incoming order.
	None Key = ""
	// Name sorts by localized title, case-insensitive.
	Name Key = "name"
	// Category sorts by category ID, then by name as tiebreak.
	Category Key = "category"
	// Status sorts new < beta < stable, then by name as tiebreak.
	Status Key = "status"
	// Version sorts reverse-lexicographically, newest-looking first.
	Version Key = "version"
)

// IsValid checks if the key is one of the supported values.
func (k Key) IsValid() bool {
	return k == None || k == Name || k == Category || k == Status || k == Version
}
