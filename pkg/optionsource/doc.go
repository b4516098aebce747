// Package optionsource provides option lists for fields from external
// stores: PostgreSQL tables through pgx, search-as-you-type over OpenSearch,
// and caching decorators backed by Redis or an in-process LRU.
//
// Sources plug into field.Config directly:
//
//	cfg := field.Config[string, country]{
//		OptionsProvider: optionsource.RedisCache(rdb, "countries:", time.Hour,
//			optionsource.Search[country](os, "countries", "name", 20)),
//	}
//	f := field.New(cfg)
//	f.LoadOptions(ctx, optionsource.SQL[country](pool, "SELECT code, name FROM countries"))
//
// ConnectPostgres, ConnectRedis and ConnectOpenSearch build the clients from
// env-tagged configs loadable with config.Load.
package optionsource
