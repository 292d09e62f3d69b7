package views

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/futuroptimist/danielsmith.io-sub004/internal/protocol"
)

// IndexPage renders the explorer shell: the snapshot is embedded as a JSON
// script block the client boots from, and the canvas client connects back
// over /stream for patches.
func IndexPage(s protocol.Snapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		snapshot, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("failed to marshal snapshot: %w", err)
		}
		if _, err := io.WriteString(w, indexHead); err != nil {
			return err
		}
		if _, err := w.Write(snapshot); err != nil {
			return err
		}
		_, err = io.WriteString(w, indexTail)
		return err
	})
}

const indexHead = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1"/>
<title>House Explorer</title>
<style>
  html, body { margin: 0; height: 100%; background: #18181c; color: #ebebeb; font: 14px/1.4 monospace; }
  #hud { position: fixed; top: 8px; left: 8px; }
  canvas { display: block; width: 100vw; height: 100vh; }
</style>
</head>
<body>
<div id="hud"></div>
<canvas id="view"></canvas>
<script id="snapshot" type="application/json">`

const indexTail = `</script>
<script src="/static/app.js"></script>
</body>
</html>
`
