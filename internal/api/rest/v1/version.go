package v1

// BasePath is the prefix of every API route
const BasePath = "/api"
