// Package provider manages the built-in site providers.
package provider

import (
	"fmt"
	"strings"

	"github.com/comicrawl/comicrawl/key"
	"github.com/comicrawl/comicrawl/provider/naver"
	"github.com/comicrawl/comicrawl/source"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Provider represents a source provider.
type Provider struct {
	ID           string
	Name         string
	CreateSource func() (source.Source, error)
}

func (p *Provider) String() string {
	return p.Name
}

// Builtins returns built-in providers.
func Builtins() []*Provider {
	return []*Provider{
		{
			ID:   naver.ID,
			Name: naver.Name,
			CreateSource: func() (source.Source, error) {
				return naver.New(naver.OptionsFromConfig()), nil
			},
		},
	}
}

// Get finds a provider by id or name, ignoring case.
func Get(name string) (*Provider, bool) {
	return lo.Find(Builtins(), func(p *Provider) bool {
		return strings.EqualFold(p.ID, name) || strings.EqualFold(p.Name, name)
	})
}

// Default returns the provider named by the sources.default setting.
func Default() (*Provider, error) {
	name := viper.GetString(key.DefaultSources)
	if p, ok := Get(name); ok {
		return p, nil
	}

	ids := lo.Map(Builtins(), func(p *Provider, _ int) string { return p.ID })
	return nil, fmt.Errorf("unknown source %q, available: %s", name, strings.Join(ids, ", "))
}
