// Package provider exposes the HTTP half of the SSO handshake for a site
// acting as the identity provider.
//
// The forum redirects the browser here with sso and sig query parameters.
// The handler validates the signature, asks the host application who the
// current user is, signs the user's attributes together with the echoed
// nonce, and redirects the browser back to the forum's login endpoint.
//
// # Usage
//
//	svc := sso.New(cfg)
//	h := provider.New(svc, func(r *http.Request) (provider.User, error) {
//	    u, ok := sessionUser(r)
//	    if !ok {
//	        return provider.User{}, provider.ErrNotAuthenticated
//	    }
//	    return provider.User{ID: u.ID, Email: u.Email}, nil
//	})
//
//	r := chi.NewRouter()
//	r.Mount("/discourse/sso", h.Router())
package provider
