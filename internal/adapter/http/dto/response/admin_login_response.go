package response

// AdminLoginResponse hands the dashboard its bearer credential once the
// shared password checks out; every admin API call carries it from then on.
type AdminLoginResponse struct {
	APIKey string `json:"apiKey"`
}
