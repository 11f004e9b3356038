package sqlinline

const QInsertPrompt = `--sql ec3449ab-34b5-4630-9b38-7932e94849ff
insert into prompts (id, user_id, original_prompt, enhanced_prompt, questionnaire_data, enhancement_options, created_at)
values (gen_random_uuid(), $1::uuid, $2::text, $3::text, $4::jsonb, $5::jsonb, now())
returning id, created_at;
`

const QListRecentPrompts = `--sql 8f6dc606-304d-4b3b-a458-4a3a67cc3aa6
select id, user_id, original_prompt, enhanced_prompt, questionnaire_data, enhancement_options, created_at
from prompts
where user_id = $1::uuid
order by created_at desc
limit $2::int;
`
