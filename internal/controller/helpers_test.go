package controller

import (
	"fmt"

	m "pathenum.dev/pkg/pathenum/internal/model"
)

func assetSet() m.CompiledSet {
	return m.NewCompiledSet([]m.Symbol{
		{Identifier: "AssetsノHomeᐧsvg", Path: "assets/home.svg"},
		{Identifier: "AssetsノNestedDir", Path: "assets/nested_dir", IsDir: true},
		{Identifier: "AssetsノNestedDirノIconᐧsvg", Path: "assets/nested_dir/icon.svg"},
	})
}

func largeSet(n int) m.CompiledSet {
	symbols := make([]m.Symbol, n)
	for i := range symbols {
		symbols[i] = m.Symbol{
			Identifier: m.Identifier(fmt.Sprintf("Iconᐧ%03d", i)),
			Path:       m.LogicalPath(fmt.Sprintf("icon.%03d", i)),
		}
	}

	return m.NewCompiledSet(symbols)
}
