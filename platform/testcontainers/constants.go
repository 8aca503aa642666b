package testcontainers

// Mongo container wiring shared by the helpers and the e2e suites.
const (
	MongoNetworkAlias = "mongo"
	MongoPort         = "27017"

	// MongoImageNameKey overrides the default mongo image when set.
	MongoImageNameKey = "MONGO_IMAGE_NAME"

	// Service environment consumed by the crmexport binary.
	MongoURIKey      = "MONGODB_URI"
	MongoDatabaseKey = "DATABASE_NAME"
)
