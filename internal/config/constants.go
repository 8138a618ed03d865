// Package config collects the runtime's build-time tunables: recursion
// and frame-stack limits, descriptor cache sizing, and the optional
// TOML overlay a host process can apply over them.
package config

// Version is the current runtime version. Set at build time via
// -ldflags or by editing this file directly.
var Version = "0.1.0"

// DefaultRecursionLimit bounds ThreadState.Depth, sized an order of
// magnitude below the point that a host Go stack of default size
// would itself fault on.
const DefaultRecursionLimit = 1000

// FrameGrowthIncrement is the default for Tunables.FrameGrowthIncr.
// Resolve carries it (or an overlay's value) into Tunables; Frames in
// this runtime have no growable local-slot slice and nothing outside
// internal/config reads the value.
const FrameGrowthIncrement = 512

// DescriptorCacheSize is the default for Tunables.DescriptorCacheSize.
// Resolve carries it (or an overlay's value) into Tunables;
// internal/expose keeps no descriptor cache and nothing outside
// internal/config reads the value.
const DescriptorCacheSize = 256

// IsTestMode indicates test mode. Nothing in this repository sets it,
// so it stays false unless a host assigns it at startup.
var IsTestMode = false

// Built-in free-function names, exposed in every module's globals by
// internal/vmod.BuiltinsMembers.
const (
	MaxFuncName  = "max"
	MinFuncName  = "min"
	LenFuncName  = "len"
	ReprFuncName = "repr"
)

// Names of internal/vmod's native modules. No import machinery looks
// them up; cmd/vire installs these modules' members directly into the
// builtins module.
const (
	NetRPCModuleName = "net.rpc"
	StoreModuleName  = "store"
)
