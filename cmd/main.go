// cmd/main.go
package main

import (
	"github.com/Prasanth-1011/Blog-System/app"
)

// @title           Blog System API
// @version         1.0
// @description     A blog publishing platform with tiered admin approval.

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
