package client

import (
	"context"
	"sync"

	"golang.org/x/oauth2"

	"github.com/siags/siagsctl/cmd/siagsctl/internal/auth"
	"github.com/siags/siagsctl/pkg/sdk"
)

// Provider yields the authenticated SDK client backed by the credential
// store. Construction is memoized so every command in a run shares one
// client and one store.
type Provider struct {
	serverURL   string
	bearerToken string // ephemeral token that bypasses the credential store
	onExpired   func()

	storeOnce sync.Once
	store     sdk.CredentialStore
	storeErr  error

	clientOnce sync.Once
	client     *sdk.Client
	clientErr  error
}

// NewProvider constructs a new Provider bound to the given server URL.
func NewProvider(serverURL string) *Provider {
	return &Provider{serverURL: serverURL}
}

// SetBearerToken injects an ephemeral bearer token (for CI and testing); the
// credential store is bypassed entirely.
func (p *Provider) SetBearerToken(token string) {
	p.bearerToken = token
}

// HasBearerToken reports whether an ephemeral token override is active.
func (p *Provider) HasBearerToken() bool {
	return p.bearerToken != ""
}

// SetSessionExpiredHandler registers the action run once when a 401 tears
// the stored session down.
func (p *Provider) SetSessionExpiredHandler(fn func()) {
	p.onExpired = fn
}

// Store returns the shared credential store.
func (p *Provider) Store() (sdk.CredentialStore, error) {
	p.storeOnce.Do(func() {
		p.store, p.storeErr = auth.NewFileStore()
	})
	return p.store, p.storeErr
}

// Credentials returns the stored principal, or (nil, nil) when logged out.
func (p *Provider) Credentials() (*sdk.Credentials, error) {
	store, err := p.Store()
	if err != nil {
		return nil, err
	}
	return store.Load()
}

// Client returns the authenticated SDK client.
func (p *Provider) Client() (*sdk.Client, error) {
	p.clientOnce.Do(func() {
		// Ephemeral bearer token first: a static token source instead of the
		// store-backed pipeline.
		if p.bearerToken != "" {
			source := oauth2.StaticTokenSource(&oauth2.Token{
				AccessToken: p.bearerToken,
				TokenType:   "Bearer",
			})
			httpClient := oauth2.NewClient(context.Background(), source)
			p.client = sdk.NewClient(p.serverURL, sdk.WithHTTPClient(httpClient))
			return
		}

		store, err := p.Store()
		if err != nil {
			p.clientErr = err
			return
		}
		p.client = sdk.NewClient(p.serverURL,
			sdk.WithCredentialStore(store),
			sdk.WithSessionExpiredHandler(p.onExpired),
		)
	})
	return p.client, p.clientErr
}
