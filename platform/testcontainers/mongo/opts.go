package mongo

// Option tunes the container before it starts. The image is overridden through
// MONGO_IMAGE_NAME rather than an option.
type Option func(*Config)

// WithNetworkName attaches the container to network under the "mongo" alias.
func WithNetworkName(network string) Option {
	return func(c *Config) { c.NetworkName = network }
}

func WithContainerName(name string) Option {
	return func(c *Config) { c.ContainerName = name }
}

// WithDatabase names the database created at init and used by Seed and Reset.
func WithDatabase(database string) Option {
	return func(c *Config) { c.Database = database }
}
