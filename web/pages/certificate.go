package pages

// CertificateView holds what the validator page shows.
type CertificateView struct {
	ID        string
	Name      string
	Course    string
	Date      string
	DonateURL string
}
