package platform

import "testing"

func TestNormalizeOS(t *testing.T) {
	tests := []struct {
		name    string
		kernel  string
		want    string
		wantErr bool
	}{
		{name: "linux", kernel: "Linux", want: OSLinux},
		{name: "linux_lowercase", kernel: "linux", want: OSLinux},
		{name: "darwin", kernel: "Darwin", want: OSDarwin},
		{name: "go_windows", kernel: "windows", want: OSWindows},
		{name: "cygwin", kernel: "CYGWIN_NT-10.0", want: OSWindows},
		{name: "mingw", kernel: "MINGW64_NT-10.0-19045", want: OSWindows},
		{name: "msys", kernel: "MSYS_NT-10.0", want: OSWindows},
		{name: "windows_nt", kernel: "Windows_NT", want: OSWindows},
		{name: "freebsd_unsupported", kernel: "FreeBSD", wantErr: true},
		{name: "sunos_unsupported", kernel: "SunOS", wantErr: true},
		{name: "empty", kernel: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeOS(tt.kernel)

			if tt.wantErr {
				if err == nil {
					t.Errorf("NormalizeOS(%q) expected error, got %q", tt.kernel, got)
				}
				return
			}

			if err != nil {
				t.Fatalf("NormalizeOS(%q) unexpected error: %v", tt.kernel, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeOS(%q) = %q, want %q", tt.kernel, got, tt.want)
			}
		})
	}
}

func TestNormalizeArch(t *testing.T) {
	tests := []struct {
		name    string
		arch    string
		want    string
		wantErr bool
	}{
		{name: "x86_64", arch: "x86_64", want: ArchX8664},
		{name: "amd64", arch: "amd64", want: ArchX8664},
		{name: "aarch64", arch: "aarch64", want: ArchAarch64},
		{name: "arm64", arch: "arm64", want: ArchAarch64},
		{name: "armv7_unsupported", arch: "armv7l", wantErr: true},
		{name: "i686_unsupported", arch: "i686", wantErr: true},
		{name: "riscv_unsupported", arch: "riscv64", wantErr: true},
		{name: "empty", arch: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeArch(tt.arch)

			if tt.wantErr {
				if err == nil {
					t.Errorf("NormalizeArch(%q) expected error, got %q", tt.arch, got)
				}
				return
			}

			if err != nil {
				t.Fatalf("NormalizeArch(%q) unexpected error: %v", tt.arch, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeArch(%q) = %q, want %q", tt.arch, got, tt.want)
			}
		})
	}
}

func TestTriple(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{
			name: "linux_x86_64",
			info: Info{OS: OSLinux, Arch: ArchX8664},
			want: "x86_64-unknown-linux-gnu",
		},
		{
			name: "linux_aarch64",
			info: Info{OS: OSLinux, Arch: ArchAarch64},
			want: "aarch64-unknown-linux-gnu",
		},
		{
			name: "darwin_x86_64",
			info: Info{OS: OSDarwin, Arch: ArchX8664},
			want: "x86_64-apple-darwin",
		},
		{
			name: "darwin_aarch64",
			info: Info{OS: OSDarwin, Arch: ArchAarch64},
			want: "aarch64-apple-darwin",
		},
		{
			name: "windows_x86_64",
			info: Info{OS: OSWindows, Arch: ArchX8664},
			want: "x86_64-pc-windows-msvc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.Triple(); got != tt.want {
				t.Errorf("Triple() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMapFamily(t *testing.T) {
	tests := []struct {
		family string
		want   string
	}{
		{"debian", FamilyDebian},
		{"Ubuntu", FamilyDebian},
		{"rhel", FamilyRHEL},
		{"arch", FamilyArch},
		{"alpine", FamilyAlpine},
		{"something-else", FamilyUnknown},
		{"", FamilyUnknown},
	}

	for _, tt := range tests {
		if got := mapFamily(tt.family); got != tt.want {
			t.Errorf("mapFamily(%q) = %q, want %q", tt.family, got, tt.want)
		}
	}
}
