package config

const (
	defaultSchemaFile  = "default_ini/default_values.ini"
	defaultBuiltinDir  = "default_ini"
	defaultCustomDir   = "custom_ini"
	defaultModWorkDir  = "z_SCAMMovementAiming_P"
	defaultModCfgPath  = "Stalker2/Content/GameLite/GameData/ObjPrototypes/SCAM.cfg"
	defaultPackerPath  = "repak/repak.exe"
	defaultPackerVerb  = "pack"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
	defaultLogFileName = "scam.log"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			SchemaFile: defaultSchemaFile,
			BuiltinDir: defaultBuiltinDir,
			CustomDir:  defaultCustomDir,
		},
		Mod: Mod{
			WorkDir:    defaultModWorkDir,
			CfgPath:    defaultModCfgPath,
			Packer:     defaultPackerPath,
			PackerArgs: []string{defaultPackerVerb},
			Pack:       true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
