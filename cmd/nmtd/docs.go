package main

// General API documentation for swaggo. Run `make swagger-gen` to generate docs.
//
// @title           nmtd API
// @version         1.0
// @description     HTTP API for machine translation model management and translation.
//
// @contact.name   nmtd maintainers
// @contact.url    https://github.com/your-org/nmtd
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
