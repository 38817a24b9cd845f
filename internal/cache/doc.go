// Package cache provides a small generic LRU cache with a soft limit.
//
//	c := cache.New[string, *vedit.Locale](32)
//	loc := c.GetOrCreate("de-DE", func() *vedit.Locale { return vedit.NewLocale(language.German) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
