// cmd/main.go
package main

import (
	"oft-transacts/app"
)

// @title           OFT Transacts API
// @version         1.0
// @description     Personal-finance account and transaction tracking API.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
