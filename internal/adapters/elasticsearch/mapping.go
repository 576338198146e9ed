package elasticsearch

// RecordIndexMapping defines the Elasticsearch mapping for the published
// records index. The record field itself is left to dynamic mapping since
// its shape varies per sub-spec type.
const RecordIndexMapping = `{
  "settings": {
    "number_of_shards": 1,
    "number_of_replicas": 1,
    "analysis": {
      "analyzer": {
        "default": {
          "type": "standard"
        }
      }
    }
  },
  "mappings": {
    "properties": {
      "id": {
        "type": "keyword"
      },
      "entryId": {
        "type": "keyword"
      },
      "type": {
        "type": "keyword"
      },
      "name": {
        "type": "text",
        "fields": {
          "keyword": {
            "type": "keyword",
            "ignore_above": 256
          }
        }
      },
      "record": {
        "type": "object",
        "dynamic": true
      }
    }
  }
}`
