// Package api exposes wallview's scan and open operations over a loopback
// HTTP API so a web front end can browse projects without shelling out.
//
// Routes:
//
//	GET  /api/health               liveness probe
//	GET  /api/projects?root=DIR    scan DIR (defaults to the configured wallpaper dir)
//	POST /api/open {"path": P}     hand P to the video player
//	GET  /api/thumbnail?path=P     serve a thumb.jpg or thumb.png
//
// Errors are returned as {"error": "<message>"} with a matching status code.
// Every request re-reads the disk; the server keeps no project cache.
package api
