// Package authclient exchanges refresh tokens with the auth service using
// the OAuth2 refresh_token grant.
package authclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/dmitrijs2005/socialecho/internal/client/session"
	"github.com/dmitrijs2005/socialecho/internal/common"
)

type Client struct {
	cfg        oauth2.Config
	httpClient *http.Client
}

// New returns a client posting to tokenURL. timeout bounds each exchange.
func New(tokenURL, clientID string, timeout time.Duration) *Client {
	return &Client{
		cfg: oauth2.Config{
			ClientID: clientID,
			Endpoint: oauth2.Endpoint{
				TokenURL:  tokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		httpClient: &http.Client{Timeout: timeout},
	}
}

var _ session.Refresher = (*Client)(nil)

// Refresh trades refreshToken for a new pair. A token the server refuses is
// reported as common.ErrorUnauthorized, anything else as ErrUnavailable.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*session.TokenPair, error) {
	if refreshToken == "" {
		return nil, common.ErrorUnauthorized
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	tok, err := c.cfg.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken}).Token()
	if err != nil {
		return nil, mapError(err)
	}

	return &session.TokenPair{AccessToken: tok.AccessToken, RefreshToken: tok.RefreshToken}, nil
}

func mapError(err error) error {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) && re.Response != nil {
		switch re.Response.StatusCode {
		case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %s", common.ErrorUnauthorized, describe(re))
		}
		return fmt.Errorf("%w: status %d", ErrUnavailable, re.Response.StatusCode)
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

func describe(re *oauth2.RetrieveError) string {
	if re.ErrorCode != "" {
		return re.ErrorCode
	}
	return re.Response.Status
}
