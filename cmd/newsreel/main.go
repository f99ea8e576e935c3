// Package main provides the newsreel CLI.
//
// newsreel turns a news article into a narrated video with a title card and
// uploads it.
//
// Usage:
//
//	newsreel <article-url>
//	newsreel feed <preset|feed-url>
//
// See --help for all available options.
package main

func main() {
	Execute()
}
