package cmd

type Config struct {
	HTTPPort         string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSslMode        string
	AdminUsername    string
	AdminPassword    string
	JWTSecret        string
	DeliveryEstimate string
	SupportContact   string
}
