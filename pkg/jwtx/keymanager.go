package jwtx

import (
	"fmt"

	"github.com/prakarsateknik/opsdesk/pkg/cryptox"
)

// KeyManager manages the JWT signing and verification keys for an instance.
// It wires together key generation (cryptox), signing and verification
// (jwtx), and the KeySet for JWKS publishing.
type KeyManager struct {
	Signer   *EdDSASigner
	Verifier *EdDSAVerifier
	KeySet   *KeySet
}

// KeyManagerOptions configures the KeyManager for a specific use case.
type KeyManagerOptions struct {
	// Issuer is the issuer claim (iss) that will be validated in tokens.
	Issuer string

	// Audience is the list of audience values (aud) that will be validated.
	// Empty slice means no audience validation.
	Audience []string
}

// NewEphemeralKeyManager creates a new KeyManager with an ephemeral Ed25519
// keypair. The key is generated on the fly and only exists in memory - it is
// never persisted to disk. This means all access tokens become invalid when
// the service restarts; remember-me tokens survive because they are stored
// separately, so signed-in operators only need a silent refresh.
func NewEphemeralKeyManager(opts KeyManagerOptions) (*KeyManager, error) {
	if opts.Issuer == "" {
		return nil, fmt.Errorf("jwtx: Issuer is required")
	}

	pemKey, err := cryptox.GenerateEd25519Key()
	if err != nil {
		return nil, fmt.Errorf("jwtx: generate key: %w", err)
	}

	kid, err := cryptox.GenerateToken(8)
	if err != nil {
		return nil, fmt.Errorf("jwtx: generate kid: %w", err)
	}

	signer, err := NewSignerEdDSA(kid, pemKey)
	if err != nil {
		return nil, fmt.Errorf("jwtx: create signer: %w", err)
	}

	keys := NewKeySet()
	if err := keys.AddSigner(signer); err != nil {
		return nil, fmt.Errorf("jwtx: register signer: %w", err)
	}

	return &KeyManager{
		Signer:   signer,
		Verifier: NewVerifierEdDSA(keys, opts.Issuer, opts.Audience),
		KeySet:   keys,
	}, nil
}
