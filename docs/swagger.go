// Package docs provides Swagger documentation for the API.
package docs

// @title Phishing Awareness API
// @version 1.0
// @description API for simulated phishing campaigns, click and credential tracking, and awareness reporting

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
// @schemes http https
