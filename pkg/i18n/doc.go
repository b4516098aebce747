// Package i18n translates validation messages and other UI strings.
//
// Translations are nested key maps per language, loaded through a
// TranslationAdapter: MapAdapter for in-memory data, FileAdapter for JSON
// and YAML files on any fs.FS (embed.FS, os.DirFS), MultiAdapter to layer
// sources. Keys use dot notation and templates use %{name} placeholders.
//
//	tr, err := i18n.NewTranslator(ctx, i18n.MultiAdapter{
//		i18n.DefaultAdapter(),
//		i18n.NewFileAdapter(os.DirFS("locales")),
//	})
//	lang := tr.MatchAcceptLanguage("de-AT,de;q=0.9,en;q=0.5")
//	msg := tr.Tm(lang, "validation.minLength", map[string]any{"expected": 3})
//
// DefaultMessages covers every constraint kind under "validation.<kind>",
// which is the translation key form.Form uses when exporting errors.
package i18n
