package sqlinline

const QInsertUsageEvent = `--sql dec43d6b-6368-42e9-a133-3a29b7ad7b4c
insert into usage_events (id, user_id, event_type, success, latency_ms, created_at, properties)
values (gen_random_uuid(), $1::uuid, $2::text, $3::boolean, $4::int, now(), coalesce($5::jsonb, '{}'::jsonb));
`
