package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestRunInfoOnCompressedFrame(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "in.bin")
	compressedPath := filepath.Join(dir, "out.bpk")

	data := bytes.Repeat([]byte{0xAA}, 200)
	if err := os.WriteFile(inputPath, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := runCompress(inputPath, compressedPath); err != nil {
		t.Fatalf("runCompress: %v", err)
	}

	if err := runInfo(compressedPath, false); err != nil {
		t.Fatalf("runInfo: %v", err)
	}
}

func TestRunInfoOnRawData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "raw.bin")
	if err := os.WriteFile(path, []byte{0x0F, 0xF0}, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := runInfo(path, true); err != nil {
		t.Fatalf("runInfo: %v", err)
	}
}

func TestRunInfoRejectsCorruptFrame(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "short.bpk")
	if err := os.WriteFile(path, []byte{1, 2}, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := runInfo(path, false); err == nil {
		t.Fatal("expected error for truncated frame header")
	}
}
