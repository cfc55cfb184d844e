package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/assimp-bridge/assimp-go/assimp"
	"github.com/dustin/go-humanize"
	"github.com/zeebo/xxh3"
)

// Report is the summary printed after a successful import.
type Report struct {
	ID       string            `json:"id" yaml:"id"`
	Path     string            `json:"path" yaml:"path"`
	Size     uint64            `json:"size" yaml:"size"`
	Digest   string            `json:"xxh3" yaml:"xxh3"`
	Flags    string            `json:"flags" yaml:"flags"`
	Duration string            `json:"duration" yaml:"duration"`
	Library  string            `json:"library" yaml:"library"`
	Stats    assimp.SceneStats `json:"stats" yaml:"stats"`
}

func buildReport(id string, scene *assimp.Scene, elapsed time.Duration) (*Report, error) {
	stats, err := scene.Stats()
	if err != nil {
		return nil, err
	}

	size, digest, err := fingerprint(scene.Path())
	if err != nil {
		return nil, err
	}

	return &Report{
		ID:       id,
		Path:     scene.Path(),
		Size:     size,
		Digest:   digest,
		Flags:    scene.Flags().String(),
		Duration: elapsed.Round(time.Microsecond).String(),
		Library:  assimp.LibraryVersion().String(),
		Stats:    stats,
	}, nil
}

// fingerprint returns the size and xxh3 digest of the file at path.
func fingerprint(path string) (uint64, string, error) {
	// #nosec G304 -- path was just imported by the user
	f, err := os.Open(path)
	if err != nil {
		return 0, "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	h := xxh3.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return 0, "", fmt.Errorf("hash %s: %w", path, err)
	}
	return uint64(n), fmt.Sprintf("%016x", h.Sum64()), nil
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func renderText(w io.Writer, r *Report) error {
	var b strings.Builder

	row := func(label string, value any) {
		fmt.Fprintf(&b, "%s %v\n", labelStyle.Render(label), value)
	}

	b.WriteString(titleStyle.Render(r.Path))
	b.WriteString("\n")
	row("Size", humanize.Bytes(r.Size))
	row("XXH3", r.Digest)
	row("Flags", r.Flags)
	row("Duration", r.Duration)
	row("Assimp", r.Library)
	row("Import ID", r.ID)
	b.WriteString("\n")
	row("Root node", r.Stats.RootNode)
	row("Nodes", humanize.Comma(int64(r.Stats.Nodes)))
	row("Meshes", humanize.Comma(int64(r.Stats.Meshes)))
	row("Vertices", humanize.Comma(int64(r.Stats.Vertices)))
	row("Faces", humanize.Comma(int64(r.Stats.Faces)))
	row("Materials", r.Stats.Materials)
	row("Textures", r.Stats.Textures)
	row("Animations", r.Stats.Animations)
	row("Lights", r.Stats.Lights)
	row("Cameras", r.Stats.Cameras)
	if r.Stats.Flags.Incomplete() {
		b.WriteString(warnStyle.Render("scene is flagged incomplete"))
		b.WriteString("\n")
	}

	_, err := lipgloss.Fprint(w, b.String())
	return err
}
