// Package codecs keeps the named factories of the bundled record codecs
// and installs the configured ones into a module collection.
//
// Codec packages register themselves from init:
//
//	func init() { codecs.MustRegister("yaml", New) }
//
// so importing a codec package is what makes it available:
//
//	import _ "github.com/arthur-debert/modulify/pkg/codecs/yamlcodec"
package codecs
