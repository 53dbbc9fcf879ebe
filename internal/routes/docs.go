package routes

import (
	"github.com/DandaAkhilReddy/ReddyFitBack/internal/config"
	"github.com/gofiber/fiber/v2"
)

const docsIndexHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>ReddyFit API</title>
  <style>
    body { margin: 0 auto; max-width: 760px; padding: 40px 20px; font-family: Georgia, serif; color: #132019; }
    h1 { font-size: 1.6rem; }
    table { width: 100%; border-collapse: collapse; }
    th, td { text-align: left; padding: 8px 10px; border-bottom: 1px solid #d8ddd6; }
    code { font-family: ui-monospace, monospace; font-size: 0.9rem; background: #f4f5f2; padding: 2px 5px; border-radius: 4px; }
    .muted { color: #536258; }
  </style>
</head>
<body>
  <h1>ReddyFit API</h1>
  <p class="muted">Development-only endpoint index. Admin routes require the <code>X-Admin-Key</code> header.</p>
  <table>
    <tr><th>Method</th><th>Path</th><th>Purpose</th></tr>
    <tr><td><code>POST</code></td><td><code>/api/profile</code></td><td>Create or update a profile by email</td></tr>
    <tr><td><code>GET</code></td><td><code>/api/profile</code></td><td>Fetch a profile by email or firebase_uid</td></tr>
    <tr><td><code>POST</code></td><td><code>/api/onboarding</code></td><td>Submit questionnaire answers</td></tr>
    <tr><td><code>PUT</code></td><td><code>/api/onboarding-status</code></td><td>Flip the completion flag</td></tr>
    <tr><td><code>GET</code></td><td><code>/api/admin/users</code></td><td>List profiles with answers</td></tr>
    <tr><td><code>GET</code></td><td><code>/api/admin/stats</code></td><td>Answer distributions</td></tr>
    <tr><td><code>DELETE</code></td><td><code>/api/admin/users/:id</code></td><td>Delete a profile and its answers</td></tr>
    <tr><td><code>POST</code></td><td><code>/api/admin/reconcile</code></td><td>Repair stranded completion flags</td></tr>
    <tr><td><code>GET</code></td><td><code>/health</code></td><td>Liveness and database ping</td></tr>
  </table>
</body>
</html>`

func registerDocsRoutes(app *fiber.App, cfg *config.Config) {
	if !cfg.DocsEnabled() {
		return
	}

	app.Get("/docs", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		c.Set(fiber.HeaderCacheControl, "no-store, max-age=0")
		c.Set(fiber.HeaderXContentTypeOptions, "nosniff")
		c.Set(fiber.HeaderXFrameOptions, "DENY")
		c.Set("X-Robots-Tag", "noindex, nofollow")
		return c.SendString(docsIndexHTML)
	})
}
