// Package redis connects to a Redis server with retries and exposes a
// health-check closure. In this module Redis is strictly optional: it backs
// the session package's read-through identity cache, and a missing or
// unhealthy Redis only costs extra database joins, never correctness.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    // run without the cache
//	}
package redis
