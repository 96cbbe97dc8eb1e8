package main

// General API documentation for swaggo. Run `make swagger-gen` to generate docs.
//
// @title           modelbridge API
// @version         1.0
// @description     HTTP API over the native inference bridge: tagged-value
// @description     method invocation and streaming text generation.
//
// @contact.name   modelbridge maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
