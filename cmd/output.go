package cmd

import (
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/warpdl/warpcookie/cmd/common"
	"github.com/warpdl/warpcookie/internal/cookies"
	"github.com/warpdl/warpcookie/pkg/sorter"
)

const (
	outputTable    = "table"
	outputJSON     = "json"
	outputNetscape = "netscape"
	outputHeader   = "header"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// sortKeys maps --sort names to cookie keys. Strings compare in natural order.
var sortKeys = map[string]func(dir sorter.Direction) sorter.SortKey[*cookies.Cookie]{
	"name": func(dir sorter.Direction) sorter.SortKey[*cookies.Cookie] {
		return sorter.ByString("name", dir, func(c *cookies.Cookie) string { return c.Name })
	},
	"domain": func(dir sorter.Direction) sorter.SortKey[*cookies.Cookie] {
		return sorter.ByString("domain", dir, func(c *cookies.Cookie) string { return c.Domain })
	},
	"path": func(dir sorter.Direction) sorter.SortKey[*cookies.Cookie] {
		return sorter.ByString("path", dir, func(c *cookies.Cookie) string { return c.Path })
	},
	"expires": func(dir sorter.Direction) sorter.SortKey[*cookies.Cookie] {
		return sorter.ByInt("expires", dir, func(c *cookies.Cookie) int64 {
			t, ok := c.ExpiresAt()
			if !ok {
				return 0
			}
			return t.Unix()
		})
	},
}

// sortCookies orders list by a comma-separated key spec such as
// "domain,-name". Cookies equal on every key keep their header order.
func sortCookies(list []cookies.Cookie, spec string) ([]cookies.Cookie, error) {
	if strings.TrimSpace(spec) == "" {
		return list, nil
	}
	var keys []sorter.SortKey[*cookies.Cookie]
	for _, part := range strings.Split(spec, ",") {
		name, dir := sorter.ParseKeySpec(part)
		mk, ok := sortKeys[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown sort key: %q (expected name, domain, path or expires)", name)
		}
		keys = append(keys, mk(dir))
	}
	ptrs := make([]*cookies.Cookie, len(list))
	for i := range list {
		ptrs[i] = &list[i]
	}
	sorter.NewStableComparer(ptrs, keys...).Sort(ptrs)
	sorted := make([]cookies.Cookie, len(ptrs))
	for i, c := range ptrs {
		sorted[i] = *c
	}
	return sorted, nil
}

func render(w io.Writer, format string, list []cookies.Cookie) error {
	switch strings.ToLower(format) {
	case outputTable, "":
		return renderTable(w, list)
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	case outputNetscape:
		return cookies.WriteNetscape(w, list)
	case outputHeader:
		_, err := fmt.Fprintln(w, cookies.RequestHeader(list))
		return err
	}
	return fmt.Errorf("unknown output format: %q (expected table, json, netscape or header)", format)
}

// renderTable prints one row per cookie. Values are not shown.
func renderTable(w io.Writer, list []cookies.Cookie) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "warpcookie: no cookies found")
		return err
	}
	txt := "Here are your cookies:"
	txt += "\n\n----------------------------------------------------------------------------------"
	txt += "\n|Num|        Name        |       Domain       |    Path    |   Expires   | Flags  |"
	txt += "\n|---|--------------------|--------------------|------------|-------------|--------|"
	for i, c := range list {
		expires := "session"
		if t, ok := c.ExpiresAt(); ok {
			expires = t.Format("2006-01-02")
		} else if c.Expires != "" {
			expires = "invalid"
		}
		txt += fmt.Sprintf("\n|%s|%s|%s|%s|%s|%s|",
			common.Fit(fmt.Sprint(i+1), 3),
			common.Fit(c.Name, 20),
			common.Fit(c.Domain, 20),
			common.Fit(c.Path, 12),
			common.Fit(expires, 13),
			common.Fit(flags(c), 8),
		)
	}
	txt += "\n----------------------------------------------------------------------------------"
	_, err := fmt.Fprintln(w, txt)
	return err
}

// flags abbreviates secure (S), httponly (H) and samesite (L/X/N).
func flags(c cookies.Cookie) string {
	var b strings.Builder
	if c.Secure() {
		b.WriteByte('S')
	}
	if c.HttpOnly() {
		b.WriteByte('H')
	}
	if v, ok := c.Attr(cookies.AttrSameSite); ok {
		switch strings.ToLower(v) {
		case "lax":
			b.WriteByte('L')
		case "strict":
			b.WriteByte('X')
		case "none":
			b.WriteByte('N')
		}
	}
	if b.Len() == 0 {
		return "-"
	}
	return b.String()
}
