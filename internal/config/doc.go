// Package config provides configuration parsing for veneer projects.
//
// The configuration is stored in veneer.json at the project root.
// This package handles loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	{
//	  "site": {
//	    "name": "My Site",
//	    "author": "Jane Doe",
//	    "baseURL": "https://example.com",
//	    "lang": "en"
//	  },
//	  "build": {
//	    "output": "dist",
//	    "assets": "assets",
//	    "clean": true
//	  },
//	  "dev": {
//	    "port": 4000,
//	    "host": "localhost",
//	    "watch": [".", "assets"]
//	  },
//	  "deploy": {
//	    "bucket": "my-site-bucket",
//	    "region": "us-east-1",
//	    "prefix": "www"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Output:", cfg.Build.Output)
package config
