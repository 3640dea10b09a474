package infrastructure

// StaticPassword checks the admin secret against a single shared
// password from configuration. It exists behind an interface at the
// call site so per-user credentials can replace it later.
type StaticPassword struct {
	secret string
}

func NewStaticPassword(secret string) StaticPassword {
	return StaticPassword{secret: secret}
}

func (p StaticPassword) Verify(password string) bool {
	return p.secret != "" && password == p.secret
}
