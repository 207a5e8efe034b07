// Package html renders the notification document: one self-contained HTML
// page portraying every new asset, with click-through links to the album.
//
// Images are linked from the remote host rather than embedded, to keep the
// email small and to sidestep attachment handling quirks in mail clients.
// The single embedded binary is the video play-button glyph, carried as
// base64 CSS so no MIME attachment is ever needed.
package html

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/lysyi3m/album-biff/app/album"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Run renders the document for the given assets, in the order given. Every
// asset must have a resolved thumbnail URL in thumbs; a missing entry is a
// caller bug, not something to paper over by dropping the tile.
func (g *Generator) Run(albumName string, albumID album.AlbumID, assets []album.Asset, thumbs map[album.Checksum]string) (string, error) {
	var buf bytes.Buffer

	title := fmt.Sprintf("New %s photos", albumName)

	buf.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	buf.WriteString(fmt.Sprintf("<title>%s</title>\n", html.EscapeString(title)))
	buf.WriteString(fmt.Sprintf("<style>%s</style>\n", stylesheet()))
	buf.WriteString("</head>\n<body>\n")

	buf.WriteString(fmt.Sprintf(`<p class="emph">There are %d new photos available in <a href="%s">your %s shared photo album</a>.</p>`,
		len(assets), html.EscapeString(albumID.URL()), html.EscapeString(albumName)))
	buf.WriteString("\n")
	buf.WriteString("<p>You may be able to see some small blurry versions below, " +
		"depending on your email app's security preferences. Whether you can, " +
		"or just see empty boxes, please click on the link above, or one of " +
		"the pictures below, to see the photos or videos at full resolution.</p>\n")
	buf.WriteString("<br>\n")

	buf.WriteString(`<div class="container">` + "\n")
	for _, asset := range assets {
		if err := g.writeTile(&buf, albumID, asset, thumbs); err != nil {
			return "", err
		}
	}
	buf.WriteString("</div>\n<br>\n</body>\n</html>\n")

	return buf.String(), nil
}

func (g *Generator) writeTile(buf *bytes.Buffer, albumID album.AlbumID, asset album.Asset, thumbs map[album.Checksum]string) error {
	thumbURL, ok := thumbs[asset.Checksum]
	if !ok {
		return fmt.Errorf("no thumbnail URL resolved for asset %s", asset.GUID)
	}

	buf.WriteString(fmt.Sprintf(`<a href="%s"><img width="%d" height="%d" src="%s">`,
		html.EscapeString(albumID.AssetURL(asset.GUID)), asset.Width, asset.Height,
		html.EscapeString(thumbURL)))
	if asset.Kind == album.KindVideo {
		buf.WriteString(`<div class="play-button"></div>`)
	}
	buf.WriteString("</a>\n")
	return nil
}

// stylesheet returns the embedded CSS, minified by stripping per-line
// indentation.
func stylesheet() string {
	css := strings.ReplaceAll(rawCSS, "%%%", playButtonPNG)

	var minified strings.Builder
	for _, line := range strings.Split(css, "\n") {
		minified.WriteString(strings.TrimLeft(line, " \t"))
	}
	return minified.String()
}

const rawCSS = `
	body {
		font-family: -apple-system, BlinkMacSystemFont, Roboto, sans-serif;
		text-align: center;
	}
	div.container {
		display: flex;
		flex-wrap: wrap;
		justify-content: space-around;
		align-items: center;
		align-content: center;
	}
	.emph {
		font-weight: bold;
		font-size: 120%;
	}
	a {
		position: relative;
	}
	img {
		margin: 5px;
		border: solid 1px black;
	}
	div.play-button {
		position: absolute;
		left: 50%;
		top: 50%;
		margin-left: -36px;
		margin-top: -36px;
		width: 73px;
		height: 73px;
		z-index: 1;
		background-size: 73px 73px;
		background-image: url(data:image/png;base64,%%%);
	}`
