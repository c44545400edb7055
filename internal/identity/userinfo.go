package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

// GoogleUserinfoURL is the userinfo endpoint for Google-issued access tokens.
const GoogleUserinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// userinfoResponse is the portion of the provider's userinfo payload we care
// about. Providers return a larger object; we only unmarshal what we need.
type userinfoResponse struct {
	ID    string `json:"id"`
	Sub   string `json:"sub"` // OIDC-style providers use "sub" instead of "id"
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserinfoVerifier resolves an OAuth access token by asking the provider's
// userinfo endpoint who it belongs to. The token was obtained by the mobile
// client through the provider's own sign-in flow; this side never sees
// credentials, only the resulting token.
type UserinfoVerifier struct {
	endpoint string
	base     *http.Client // overrides the transport under the token source, for tests
}

func NewUserinfoVerifier(endpoint string) *UserinfoVerifier {
	return &UserinfoVerifier{endpoint: endpoint}
}

func (v *UserinfoVerifier) Verify(ctx context.Context, token string) (*User, error) {
	if v.base != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, v.base)
	}
	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	client := oauth2.NewClient(ctx, source)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build userinfo request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call userinfo endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrUnauthenticated
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo endpoint returned status %d", resp.StatusCode)
	}

	var info userinfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode userinfo response: %w", err)
	}

	id := info.ID
	if id == "" {
		id = info.Sub
	}
	if id == "" {
		return nil, ErrUnauthenticated
	}

	return &User{ID: id, Name: info.Name, Email: info.Email}, nil
}
