package restaurant

// Info is the single-row restaurant profile shown on invoices and the
// settings screen.
type Info struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	NameAr    string `json:"name_ar"`
	Tagline   string `json:"tagline"`
	TaglineAr string `json:"tagline_ar"`
	LogoURL   string `json:"logoUrl"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	AddressAr string `json:"address_ar"`
	Email     string `json:"email"`
}
