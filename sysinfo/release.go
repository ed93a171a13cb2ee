package sysinfo

import (
	"bytes"
	"strings"
)

var prettyNameKey = []byte("PRETTY_NAME=")

// OSPrettyName returns PRETTY_NAME from os-release, or "Unknown" when the
// file has no such line. An unreadable file is an error.
func (c *Collector) OSPrettyName() (string, error) {
	return c.sys.prettyName(c.osReleasePath)
}

// osReleasePrettyName reads the head of an os-release file and extracts
// PRETTY_NAME from it.
func osReleasePrettyName(path string) (string, error) {
	var buf [prefixSize]byte
	content, err := readPrefix(path, buf[:])
	if err != nil {
		return "", err
	}
	return parsePrettyName(content), nil
}

// parsePrettyName scans content line by line and returns the value of the
// first PRETTY_NAME= line. One pair of surrounding double quotes is removed,
// and only when both are present.
//
//	PRETTY_NAME="NixOS 24.05 (Uakari)"  ->  NixOS 24.05 (Uakari)
//	PRETTY_NAME=Arch                    ->  Arch
func parsePrettyName(content []byte) string {
	for len(content) > 0 {
		var line []byte
		line, content = nextLine(content)

		if !bytes.HasPrefix(line, prettyNameKey) {
			continue
		}

		value := line[len(prettyNameKey):]
		if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
			value = value[1 : len(value)-1]
		}
		return strings.ToValidUTF8(string(value), "\uFFFD")
	}
	return unknown
}
