// Package fonts discovers the Fluent font families at startup.
//
// Each role (the UI text family and the icon family) has an ordered list of
// candidates. A candidate is chosen when its regular face can be read and
// parsed; the first candidate that qualifies wins and the rest are skipped.
// System fonts come first, fonts shipped next to the binary after them.
// When no candidate qualifies the role stays unset and the toolkit falls
// back to the bundled Go fonts for text and Unicode glyphs for icons.
//
//	registry, err := fonts.Discover(ctx, fonts.DefaultCandidates(cfg.Fonts.SearchDirs), log)
//	typography := registry.Register(manager)
package fonts
