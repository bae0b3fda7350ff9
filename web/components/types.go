package components

// FormData is what the certificate form redisplays after a rejected submission.
type FormData struct {
	Action string
	Name   string
	Course string
	Date   string
}

// CertificateRow is one line of the admin list.
type CertificateRow struct {
	ID        string
	Name      string
	Course    string
	Date      string
	ViewURL   string
	DeleteURL string
}
