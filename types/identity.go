package types

// Identity is the verified caller presented by the identity provider. Subject is the
// provider's user id and equals users.clerk_id.
type Identity struct {
	Subject string
	Email   string
}
