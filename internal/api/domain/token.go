package domain

// TimestampLayout renders TokenPair timestamps as "yyyy-MM-dd HH:mm:ss".
const TimestampLayout = "2006-01-02 15:04:05"

// TokenPair is returned by sign-in and refresh and posted back by clients to
// refresh. Only the refresh token half is ever persisted.
type TokenPair struct {
	Authenticated bool   `json:"authenticated"`
	Created       string `json:"created"`
	Expiration    string `json:"expiration"`
	AccessToken   string `json:"accessToken"`
	RefreshToken  string `json:"refreshToken"`
}
