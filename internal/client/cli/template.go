package cli

const usageText = `Lyrebird Client

Usage:
  lyrebird [OPTIONS] COMMAND

Options:
  --version       Show version information
  --server URL    Server URL (default: http://localhost:8080)
  --db PATH       Path to local database (default: lyrebird-client.db)

Commands:
  register             Register a new account
  login                Log in to the server
  logout               Log out and remove the local session
  status               Show session status
  sync                 Bring the local song cache up to date with the server
  list                 List cached songs
  get <id>             Show full song details including lyrics
  add [cover-file]     Add a new song, optionally with a cover image
  update <id> [cover-file]
                       Update a song; empty input keeps the current value
  delete <id>          Delete a song
  translate            Translate lyrics line by line
  languages            List supported translation languages

Examples:
  lyrebird register
  lyrebird login
  lyrebird sync
  lyrebird add ~/covers/gloomy-sunday.jpg
  lyrebird get b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5
  lyrebird --server https://example.com login`

const songListTemplate = `=== Songs ===
{{- if eq (len .) 0 }}

No songs cached locally.

Use 'lyrebird add' to create a song or 'lyrebird sync' to pull your catalog.
{{- else }}

Found {{len .}} song(s):
{{ range . }}
- {{ .Title }}
   ID:     {{ .ID }}
   {{- if .Artist }}
   Artist: {{ .Artist }}
   {{- end }}
   {{- if .Album }}
   Album:  {{ .Album }}
   {{- end }}
{{ end }}
Use 'lyrebird get <id>' to view lyrics.
{{- end }}`

const songDetailTemplate = `=== Song Details ===

Title:   {{ .Title }}
ID:      {{ .ID }}
{{- if .Artist }}
Artist:  {{ .Artist }}
{{- end }}
{{- if .Album }}
Album:   {{ .Album }}
{{- end }}
{{- if .Cover }}
Cover:   {{ .Cover.URL }}
{{- end }}
Updated: {{ .UpdatedAt.Format "2006-01-02 15:04:05" }}
{{- if .OriginalLyrics }}

Original lyrics:
---
{{ .OriginalLyrics }}
---
{{- end }}
{{- if .TranslatedLyrics }}

Translated lyrics:
---
{{ .TranslatedLyrics }}
---
{{- end }}`
