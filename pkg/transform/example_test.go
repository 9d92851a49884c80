package transform_test

import (
	"fmt"

	"github.com/walteh/copypaths/pkg/transform"
)

func ExampleCIncludeStatement() {
	in := transform.Input{
		FilePath:    "/proj/include/foo/bar.hpp",
		ProjectRoot: "/proj",
	}

	quoted, _ := transform.CIncludeStatement(in, transform.Options{StripPrefixes: []string{"include"}})
	bracketed, _ := transform.CIncludeStatement(in, transform.Options{StripPrefixes: []string{"include"}, UseAngleBrackets: true})
	guard, _ := transform.HeaderGuard(in, transform.Options{})

	fmt.Println(quoted)
	fmt.Println(bracketed)
	fmt.Println(guard)

	// Output:
	// #include "foo/bar.hpp"
	// #include <foo/bar.hpp>
	// INCLUDE_FOO_BAR_HPP_
}

func ExampleJavaImportStatement() {
	in := transform.Input{
		FilePath:    "/proj/src/com/acme/Foo.java",
		ProjectRoot: "/proj/src",
	}

	imp, _ := transform.JavaImportStatement(in, transform.Options{})
	pkg, _ := transform.JavaPackageStatement(in, transform.Options{})

	fmt.Println(imp)
	fmt.Println(pkg)

	// Output:
	// import com.acme.Foo;
	// package com.acme;
}
