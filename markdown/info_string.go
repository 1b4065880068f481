// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package markdown

import "strings"

// InfoString follows the opening fence of a fenced code block and usually
// names the language of the block. InfoNone means no info string.
type InfoString string

const (
	InfoNone       InfoString = ""
	InfoText       InfoString = "text"
	InfoMarkdown   InfoString = "markdown"
	InfoShell      InfoString = "shell"
	InfoGo         InfoString = "go"
	InfoJSON       InfoString = "json"
	InfoYAML       InfoString = "yaml"
	InfoTOML       InfoString = "toml"
	InfoHTML       InfoString = "html"
	InfoCSS        InfoString = "css"
	InfoJavaScript InfoString = "javascript"
	InfoTypeScript InfoString = "typescript"
	InfoSQL        InfoString = "sql"
	InfoPython     InfoString = "python"
	InfoRust       InfoString = "rust"
	InfoDiff       InfoString = "diff"
	InfoDockerfile InfoString = "dockerfile"
	InfoMermaid    InfoString = "mermaid"
)

type language struct {
	short string
	info  InfoString
}

// languages is ordered as Languages reports it.
var languages = []language{
	{short: "js", info: InfoJavaScript},
	{short: "rs", info: InfoRust},
	{short: "sh", info: InfoShell},
	{short: "ts", info: InfoTypeScript},
	{short: "go", info: InfoGo},
	{short: "py", info: InfoPython},
	{short: "md", info: InfoMarkdown},
	{short: "txt", info: InfoText},
	{short: "json", info: InfoJSON},
	{short: "yml", info: InfoYAML},
	{short: "toml", info: InfoTOML},
	{short: "html", info: InfoHTML},
	{short: "css", info: InfoCSS},
	{short: "sql", info: InfoSQL},
	{short: "diff", info: InfoDiff},
	{short: "docker", info: InfoDockerfile},
	{short: "mermaid", info: InfoMermaid},
}

// Language pairs a shorthand with the info string it stands for.
type Language struct {
	Short string     `json:"short" yaml:"short"`
	Info  InfoString `json:"info" yaml:"info"`
}

// Languages lists the known shorthands.
func Languages() []Language {
	out := make([]Language, 0, len(languages))
	for _, l := range languages {
		out = append(out, Language{Short: l.short, Info: l.info})
	}
	return out
}

// LookupLanguage resolves a shorthand ("js") or a full info string
// ("javascript") case-insensitively.
func LookupLanguage(name string) (InfoString, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return InfoNone, false
	}
	for _, l := range languages {
		if l.short == name || string(l.info) == name {
			return l.info, true
		}
	}
	return InfoNone, false
}
