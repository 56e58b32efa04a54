// Package api serves the shadow JSON-RPC namespace over HTTP.
// @title ShadowLogs API
// @version 1.0
// @description JSON-RPC API for searching shadow logs (shadow_getLogs)
// @contact.name API Support
// @contact.url https://github.com/goran-ethernal/ShadowLogs
// @license.name Apache 2.0
// @license.url https://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8545
// @basePath /
// @schemes http https
package api
